// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/thingsconsole/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) History(ctx context.Context, from, to time.Time, operation string) ([]audit.Entry, error) {
	args := m.Called(ctx, from, to, operation)
	entries, _ := args.Get(0).([]audit.Entry)
	return entries, args.Error(1)
}

// MockSink is a mock implementation of audit.Sink
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Append(ctx context.Context, entry audit.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockSink) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
