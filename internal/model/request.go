package model

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateMetadataRequest struct {
	AvatarID string `json:"avatarId"`
}

type CreateSpaceRequest struct {
	Name       string `json:"name"`
	Dimensions string `json:"dimensions"`
}
