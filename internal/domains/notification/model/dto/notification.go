package dto

import (
	"reservahub/internal/domains/notification/model"
	"reservahub/shared"
	gDto "reservahub/shared/dto"
)

type NotificationResponse struct {
	ID              string `json:"id"`
	BusinessID      string `json:"business_id"`
	AppointmentID   string `json:"appointment_id"`
	Type            string `json:"type"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	ServiceName     string `json:"service_name"`
	EmployeeName    string `json:"employee_name"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Read            bool   `json:"read"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(notification model.Notification) {
	r.ID = notification.ID
	r.BusinessID = notification.BusinessID
	r.AppointmentID = notification.AppointmentID
	r.Type = notification.Type
	r.ClientName = notification.ClientName
	r.ClientEmail = notification.ClientEmail
	r.ServiceName = notification.ServiceName
	r.EmployeeName = notification.EmployeeName
	r.AppointmentDate = notification.AppointmentDate
	r.AppointmentTime = notification.AppointmentTime
	r.Read = notification.Read
	r.Metadata.FromModel(notification.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}

type UnreadCountResponse struct {
	Unread int `json:"unread"`
}
