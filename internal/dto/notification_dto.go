package dto

type NotificationListQuery struct {
	UnreadOnly bool `query:"unreadOnly"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type AnnouncementRequest struct {
	Title   string `json:"title" validate:"required,max=120"`
	Message string `json:"message" validate:"required,max=500"`
}
