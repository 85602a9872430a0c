package registry

import (
	"sync"

	"github.com/weftlang/weft/internal/ast"
)

// MapLookup is an in-memory companion source. Unit tests and the local
// resolution path of single-unit builds use it instead of a database.
type MapLookup struct {
	mu    sync.RWMutex
	pairs map[string]companionPair
}

type companionPair struct {
	helper      *ast.ClassDecl
	fieldHelper *ast.ClassDecl
}

func NewMapLookup() *MapLookup {
	return &MapLookup{pairs: make(map[string]companionPair)}
}

// Register associates a trait name with its companions.
func (m *MapLookup) Register(traitName string, helper, fieldHelper *ast.ClassDecl) {
	m.mu.Lock()
	m.pairs[traitName] = companionPair{helper: helper, fieldHelper: fieldHelper}
	m.mu.Unlock()
}

// LookupCompanions implements the composition lookup contract.
func (m *MapLookup) LookupCompanions(traitName string) (helper, fieldHelper *ast.ClassDecl, ok bool, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pairs[traitName]
	if !ok {
		return nil, nil, false, nil
	}
	return p.helper, p.fieldHelper, true, nil
}
