package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ContactRepo   ContactRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	RateRepo      RateRepositoryFacade
	PostingRepo   PostingRepositoryFacade
	ReportingRepo ReportingRepository
	UserRepo      UserRepositoryFacade
}
