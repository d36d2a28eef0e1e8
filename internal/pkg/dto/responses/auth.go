package responses

type Login struct {
	UserID string `json:"user_id"`
}
