package dto

import "time"

type CreateRequestRequest struct {
	Reason       string `json:"reason"`
	NewStartTime string `json:"new_start_time"`
	NewEndTime   string `json:"new_end_time"`
	Type         string `json:"type"`
	UserRut      string `json:"user_rut"`
}

type UpdateRequestRequest struct {
	Reason       string `json:"reason"`
	NewStartTime string `json:"new_start_time"`
	NewEndTime   string `json:"new_end_time"`
	Type         string `json:"type"`
	Status       string `json:"status"`
}

type RequestResponse struct {
	ID           int64     `json:"id"`
	RequestedAt  time.Time `json:"requested_at"`
	Reason       string    `json:"reason"`
	NewStartTime *string   `json:"new_start_time"`
	NewEndTime   *string   `json:"new_end_time"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	UserRut      string    `json:"user_rut"`
	UserName     string    `json:"user_name,omitempty"`
}

type CreateAnswerRequest struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type AnswerResponse struct {
	ID          int64     `json:"id"`
	RespondedAt time.Time `json:"responded_at"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	RequestID   int64     `json:"request_id"`
}
