package dto

import "time"

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type AdminDashboardStats struct {
	TotalResults   int64                `json:"total_results"`
	LowConfidence  int64                `json:"low_confidence"`
	Archetypes     map[string]int64     `json:"archetypes"`
	Domains        map[string]int64     `json:"domains"`
	Scales         map[string]int64     `json:"scales"`
	TopPods        []PodCountResponse   `json:"top_pods"`
	RecentResults  []QuizResultResponse `json:"recent_results"`
	PodSignupCount int64                `json:"pod_signup_count"`
}

type PodCountResponse struct {
	PodKey string `json:"pod_key"`
	Count  int64  `json:"count"`
}

type QuizResultResponse struct {
	SessionId     string    `json:"session_id"`
	Primary       string    `json:"primary"`
	Secondary     string    `json:"secondary,omitempty"`
	Domain        string    `json:"domain"`
	Subdomain     string    `json:"subdomain,omitempty"`
	Scale         string    `json:"scale"`
	PodKey        string    `json:"pod_key"`
	Confidence    float64   `json:"confidence"`
	Level         string    `json:"level"`
	IsBlended     bool      `json:"is_blended"`
	LowConfidence bool      `json:"low_confidence"`
	CreatedAt     time.Time `json:"created_at"`
}

type LogListResponse struct {
	Id        string    `json:"id"`
	Level     string    `json:"level"`
	Module    string    `json:"module,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details,omitempty"`
}
