package services

// ServiceContainer bundles the services handed to the handler layer.
type ServiceContainer struct {
	AuthService      AuthService
	JobService       JobService
	ProgressService  ProgressService
	CandidateService CandidateService
}
