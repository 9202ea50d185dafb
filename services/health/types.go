package health

import (
	journalRepo "x-mcp/repositories/journal"
)

type Service interface {
}

type Impl struct {
	journal journalRepo.Repository
}
