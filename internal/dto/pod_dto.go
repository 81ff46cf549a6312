package dto

type JoinPodRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required,min=2,max=100"`
}

type PodSignupResponse struct {
	PodKey      string `json:"pod_key"`
	MemberCount int64  `json:"member_count"`
	Pairing     string `json:"pairing,omitempty"`
}
