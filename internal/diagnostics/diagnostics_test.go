package diagnostics

import (
	"strings"
	"sync"
	"testing"

	"github.com/weftlang/weft/internal/token"
)

func TestNewErrorMessage(t *testing.T) {
	tok := token.Token{Line: 3, Column: 7}
	e := NewError(ErrT001, tok, "app.Base")
	if e.Code != ErrT001 {
		t.Errorf("Code = %s", e.Code)
	}
	if !strings.Contains(e.Message, "another trait") || !strings.Contains(e.Message, "app.Base") {
		t.Errorf("Message = %q", e.Message)
	}
	if !strings.Contains(e.Error(), "line 3, column 7") {
		t.Errorf("Error() must include the position, got %q", e.Error())
	}

	if got := NewError(ErrT002, token.Token{}).Error(); strings.Contains(got, "line") {
		t.Errorf("positionless diagnostic must not render a position, got %q", got)
	}
}

func TestCollectorConcurrentAppend(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(NewError(ErrT002, token.Token{}, "x"))
		}()
	}
	wg.Wait()
	if c.Count() != 50 {
		t.Errorf("Count = %d, want 50", c.Count())
	}
}

func TestCollectorByCode(t *testing.T) {
	c := NewCollector()
	c.Add(NewError(ErrT001, token.Token{}))
	c.Add(NewError(ErrT002, token.Token{}))
	c.Add(NewError(ErrT001, token.Token{}))
	c.Add(nil)

	if got := len(c.ByCode(ErrT001)); got != 2 {
		t.Errorf("ByCode(T001) = %d, want 2", got)
	}
	if c.Count() != 3 {
		t.Errorf("nil adds must be ignored, Count = %d", c.Count())
	}
}
