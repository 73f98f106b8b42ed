package platform

import (
	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

// New builds a core.Service speaking to the backend at the given base URL.
//
//	svc, err := platform.New("https://api.example.com", platform.WithTimeout(5*time.Second))
func New(baseURL string, opts ...Option) (*core.Service, error) {
	repo, err := Init(baseURL, opts...)
	if err != nil {
		return nil, err
	}

	return core.NewService(repo), nil
}
