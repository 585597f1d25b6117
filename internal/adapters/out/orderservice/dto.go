package orderservice

import (
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
)

type customerInfoDTO struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type deliveryAddressDTO struct {
	Street string `json:"street"`
	Number string `json:"number"`
	Code   string `json:"code"`
	City   string `json:"city"`
}

type deliveryOptionDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Time        string  `json:"time"`
}

type lineItemDTO struct {
	ID          string         `json:"_id"`
	CartItemID  string         `json:"cart_item_id"`
	ProductName string         `json:"product_name"`
	Price       float64        `json:"price"`
	BasePrice   float64        `json:"base_price"`
	FileURL     string         `json:"file_url"`
	Values      map[string]any `json:"values"`
}

// orderDTO mirrors one order record of the backend list responses. Status is
// absent from most list endpoints, where the endpoint itself implies it.
type orderDTO struct {
	ID              string              `json:"_id"`
	Status          string              `json:"status,omitempty"`
	Items           []lineItemDTO       `json:"items"`
	CustomerInfo    customerInfoDTO     `json:"customer_info"`
	DeliveryAddress *deliveryAddressDTO `json:"delivery_address,omitempty"`
	DeliveryOption  *deliveryOptionDTO  `json:"delivery_option,omitempty"`
	DeliveryMethod  string              `json:"delivery_method"`
	Total           float64             `json:"total"`
	SubmittedAt     time.Time           `json:"submitted_at"`
	IsStudent       bool                `json:"is_student"`
	PaymentIntentID string              `json:"payment_intent_id"`
	PaymentStatus   string              `json:"payment_status"`
	UploadStatus    string              `json:"upload_status"`
}

type paginationDTO struct {
	Total    int `json:"total"`
	Limit    int `json:"limit"`
	Skip     int `json:"skip"`
	Returned int `json:"returned"`
}

type listResponseDTO struct {
	Status string `json:"status"`
	Data   struct {
		Orders []orderDTO `json:"orders"`
	} `json:"data"`
	Pagination paginationDTO `json:"pagination"`
}

type transitionResponseDTO struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}

// toDomain maps a wire order into the domain aggregate. fallbackStatus is
// used when the record carries no status field; sub-states missing from the
// record default to pending.
func (dto orderDTO) toDomain(fallbackStatus order.Status) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	status := fallbackStatus
	if dto.Status != "" {
		if status, err = order.ParseStatus(dto.Status); err != nil {
			return nil, err
		}
	}

	payment := order.PaymentPending
	if dto.PaymentStatus != "" {
		if payment, err = order.ParsePaymentStatus(dto.PaymentStatus); err != nil {
			return nil, err
		}
	}

	upload := order.UploadPending
	if dto.UploadStatus != "" {
		if upload, err = order.ParseUploadStatus(dto.UploadStatus); err != nil {
			return nil, err
		}
	}

	details := order.Details{
		Customer: order.CustomerInfo{
			Name:    dto.CustomerInfo.Name,
			Surname: dto.CustomerInfo.Surname,
			Email:   dto.CustomerInfo.Email,
			Phone:   dto.CustomerInfo.Phone,
			Company: dto.CustomerInfo.Company,
		},
		Delivery:        dto.deliveryInfo(),
		Items:           dto.lineItems(),
		IsStudent:       dto.IsStudent,
		PaymentIntentID: dto.PaymentIntentID,
	}

	return order.NewOrder(id, status, payment, upload, dto.Total, dto.SubmittedAt, details)
}

func (dto orderDTO) deliveryInfo() order.DeliveryInfo {
	info := order.DeliveryInfo{Method: dto.DeliveryMethod}
	if dto.DeliveryAddress != nil {
		info.Address = &order.DeliveryAddress{
			Street: dto.DeliveryAddress.Street,
			Number: dto.DeliveryAddress.Number,
			Code:   dto.DeliveryAddress.Code,
			City:   dto.DeliveryAddress.City,
		}
	}
	if dto.DeliveryOption != nil {
		info.Option = &order.DeliveryOption{
			ID:          dto.DeliveryOption.ID,
			Name:        dto.DeliveryOption.Name,
			Description: dto.DeliveryOption.Description,
			Price:       dto.DeliveryOption.Price,
			Time:        dto.DeliveryOption.Time,
		}
	}
	return info
}

func (dto orderDTO) lineItems() []order.LineItem {
	if len(dto.Items) == 0 {
		return nil
	}
	items := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.LineItem{
			ID:          item.ID,
			CartItemID:  item.CartItemID,
			ProductName: item.ProductName,
			Price:       item.Price,
			BasePrice:   item.BasePrice,
			FileURL:     item.FileURL,
			Values:      item.Values,
		})
	}
	return items
}
