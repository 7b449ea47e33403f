package orderdto

// GatewayNotificationInput is the raw notify-callback body: the encrypted
// trade payload and the out-of-band check value the gateway sent with it.
type GatewayNotificationInput struct {
	TradeInfo string
	TradeSha  string
}
