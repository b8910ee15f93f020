package httpServices

type SendSMSRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type SendSMSResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}
