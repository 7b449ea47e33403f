package mappers

import (
	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/models"
)

func ToDomainPendingOrder(model *models.PendingOrderModel) *domain.PendingOrder {
	items := make([]domain.PendingOrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = domain.PendingOrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		}
	}
	return &domain.PendingOrder{
		ID:             model.ID,
		OrderNo:        model.OrderNo,
		UserID:         model.UserID,
		Subtotal:       model.Subtotal,
		DiscountAmount: model.DiscountAmount,
		ShippingFee:    model.ShippingFee,
		FinalAmount:    model.FinalAmount,
		DiscountCodeID: model.DiscountCodeID,
		RecipientName:  model.RecipientName,
		RecipientPhone: model.RecipientPhone,
		ContactEmail:   model.ContactEmail,
		ShippingAddr:   model.ShippingAddr,
		InvoiceTitle:   model.InvoiceTitle,
		InvoiceTaxID:   model.InvoiceTaxID,
		Status:         domain.PendingStatus(model.Status),
		ExpiredAt:      model.ExpiredAt,
		CreatedAt:      model.CreatedAt,
		Items:          items,
	}
}

func ToGORMPendingOrder(order *domain.PendingOrder) *models.PendingOrderModel {
	items := make([]models.PendingOrderItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = models.PendingOrderItemModel{
			ID:             item.ID,
			PendingOrderID: order.ID,
			ProductID:      item.ProductID,
			Title:          item.Title,
			UnitPrice:      item.UnitPrice,
			Quantity:       item.Quantity,
			Subtotal:       item.Subtotal,
		}
	}
	return &models.PendingOrderModel{
		ID:             order.ID,
		OrderNo:        order.OrderNo,
		UserID:         order.UserID,
		Subtotal:       order.Subtotal,
		DiscountAmount: order.DiscountAmount,
		ShippingFee:    order.ShippingFee,
		FinalAmount:    order.FinalAmount,
		DiscountCodeID: order.DiscountCodeID,
		RecipientName:  order.RecipientName,
		RecipientPhone: order.RecipientPhone,
		ContactEmail:   order.ContactEmail,
		ShippingAddr:   order.ShippingAddr,
		InvoiceTitle:   order.InvoiceTitle,
		InvoiceTaxID:   order.InvoiceTaxID,
		Status:         string(order.Status),
		ExpiredAt:      order.ExpiredAt,
		CreatedAt:      order.CreatedAt,
		Items:          items,
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	items := make([]domain.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = domain.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		}
	}
	return &domain.Order{
		ID:                model.ID,
		OrderNo:           model.OrderNo,
		UserID:            model.UserID,
		Subtotal:          model.Subtotal,
		DiscountAmount:    model.DiscountAmount,
		ShippingFee:       model.ShippingFee,
		FinalAmount:       model.FinalAmount,
		DiscountCodeID:    model.DiscountCodeID,
		RecipientName:     model.RecipientName,
		RecipientPhone:    model.RecipientPhone,
		ContactEmail:      model.ContactEmail,
		ShippingAddr:      model.ShippingAddr,
		InvoiceTitle:      model.InvoiceTitle,
		InvoiceTaxID:      model.InvoiceTaxID,
		PaymentStatus:     domain.PaymentStatus(model.PaymentStatus),
		FulfillmentStatus: domain.FulfillmentStatus(model.FulfillmentStatus),
		GatewayTradeNo:    model.GatewayTradeNo,
		PaymentType:       model.PaymentType,
		PaidAt:            model.PaidAt,
		CreatedAt:         model.CreatedAt,
		Items:             items,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = models.OrderItemModel{
			ID:        item.ID,
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		}
	}
	return &models.OrderModel{
		ID:                order.ID,
		OrderNo:           order.OrderNo,
		UserID:            order.UserID,
		Subtotal:          order.Subtotal,
		DiscountAmount:    order.DiscountAmount,
		ShippingFee:       order.ShippingFee,
		FinalAmount:       order.FinalAmount,
		DiscountCodeID:    order.DiscountCodeID,
		RecipientName:     order.RecipientName,
		RecipientPhone:    order.RecipientPhone,
		ContactEmail:      order.ContactEmail,
		ShippingAddr:      order.ShippingAddr,
		InvoiceTitle:      order.InvoiceTitle,
		InvoiceTaxID:      order.InvoiceTaxID,
		PaymentStatus:     string(order.PaymentStatus),
		FulfillmentStatus: string(order.FulfillmentStatus),
		GatewayTradeNo:    order.GatewayTradeNo,
		PaymentType:       order.PaymentType,
		PaidAt:            order.PaidAt,
		CreatedAt:         order.CreatedAt,
		Items:             items,
	}
}
