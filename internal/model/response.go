package model

type SignupResponse struct {
	UserID string `json:"userId"`
}

type SigninResponse struct {
	Token string `json:"token"`
}

type CreateAvatarResponse struct {
	AvatarID string `json:"avatarId"`
}

type AvatarListResponse struct {
	Avatars []Avatar `json:"avatars"`
}

type BulkMetadataResponse struct {
	Avatars []UserAvatar `json:"avatars"`
}

type CreateSpaceResponse struct {
	SpaceID string `json:"spaceId"`
}

type SpaceListResponse struct {
	Spaces []SpaceSummary `json:"spaces"`
}

type SpaceSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Dimensions string `json:"dimensions"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
