// Package mocks holds generated test doubles. Regenerate with go generate.
package mocks

//go:generate mockgen -destination=portsmock/ports.go -package=portsmock github.com/peopledesk/console/internal/ports TokenStore
//go:generate mockgen -destination=servicemock/service.go -package=servicemock github.com/peopledesk/console/internal/service IdentityClient
