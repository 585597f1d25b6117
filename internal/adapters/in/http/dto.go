package http

import (
	"time"

	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/session"
	"dashboard/internal/core/domain/services"
)

type errorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type loginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name,omitempty"`
}

type transitionRequestDTO struct {
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

type customerInfoDTO struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
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
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Time        string  `json:"time,omitempty"`
}

type lineItemDTO struct {
	ID          string         `json:"id"`
	ProductName string         `json:"product_name"`
	Price       float64        `json:"price"`
	FileURL     string         `json:"file_url,omitempty"`
	Values      map[string]any `json:"values,omitempty"`
}

type orderDTO struct {
	ID              string              `json:"id"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	UploadStatus    string              `json:"upload_status"`
	Total           float64             `json:"total"`
	SubmittedAt     time.Time           `json:"submitted_at"`
	CustomerInfo    customerInfoDTO     `json:"customer_info"`
	DeliveryMethod  string              `json:"delivery_method"`
	DeliveryAddress *deliveryAddressDTO `json:"delivery_address,omitempty"`
	DeliveryOption  *deliveryOptionDTO  `json:"delivery_option,omitempty"`
	Items           []lineItemDTO       `json:"items,omitempty"`
	IsStudent       bool                `json:"is_student"`
	PaymentIntentID string              `json:"payment_intent_id,omitempty"`
}

type paginationDTO struct {
	Total    int `json:"total"`
	Limit    int `json:"limit"`
	Skip     int `json:"skip"`
	Returned int `json:"returned"`
}

type listResponseDTO struct {
	Bucket     string        `json:"bucket"`
	Stale      bool          `json:"stale"`
	Orders     []orderDTO    `json:"orders"`
	Pagination paginationDTO `json:"pagination"`
}

type transitionResponseDTO struct {
	Order orderDTO `json:"order"`
}

func toUserDTO(user session.User) userDTO {
	return userDTO{
		ID:       user.ID,
		Email:    user.Email,
		Role:     user.Role.String(),
		FullName: user.FullName,
	}
}

func toOrderDTO(o *order.Order) orderDTO {
	details := o.Details()

	dto := orderDTO{
		ID:            o.ID().String(),
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		UploadStatus:  o.UploadStatus().String(),
		Total:         o.Total(),
		SubmittedAt:   o.SubmittedAt(),
		CustomerInfo: customerInfoDTO{
			Name:    details.Customer.Name,
			Surname: details.Customer.Surname,
			Email:   details.Customer.Email,
			Phone:   details.Customer.Phone,
			Company: details.Customer.Company,
		},
		DeliveryMethod:  details.Delivery.Method,
		IsStudent:       details.IsStudent,
		PaymentIntentID: details.PaymentIntentID,
	}

	if addr := details.Delivery.Address; addr != nil {
		dto.DeliveryAddress = &deliveryAddressDTO{
			Street: addr.Street,
			Number: addr.Number,
			Code:   addr.Code,
			City:   addr.City,
		}
	}
	if opt := details.Delivery.Option; opt != nil {
		dto.DeliveryOption = &deliveryOptionDTO{
			ID:          opt.ID,
			Name:        opt.Name,
			Description: opt.Description,
			Price:       opt.Price,
			Time:        opt.Time,
		}
	}
	for _, item := range details.Items {
		dto.Items = append(dto.Items, lineItemDTO{
			ID:          item.ID,
			ProductName: item.ProductName,
			Price:       item.Price,
			FileURL:     item.FileURL,
			Values:      item.Values,
		})
	}

	return dto
}

func toListResponseDTO(view services.View) listResponseDTO {
	orders := make([]orderDTO, 0, len(view.Orders))
	for _, o := range view.Orders {
		orders = append(orders, toOrderDTO(o))
	}

	return listResponseDTO{
		Bucket: view.Bucket.String(),
		Stale:  view.Stale,
		Orders: orders,
		Pagination: paginationDTO{
			Total:    view.Total,
			Limit:    view.Limit,
			Skip:     view.Skip,
			Returned: view.Returned,
		},
	}
}
