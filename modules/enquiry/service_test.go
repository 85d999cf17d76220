package enquiry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)         {}
func (m *mockLogger) Info(msg string, args ...any)          {}
func (m *mockLogger) Warn(msg string, args ...any)          {}
func (m *mockLogger) Error(msg string, args ...any)         {}
func (m *mockLogger) With(args ...any) types.Logger         { return m }
func (m *mockLogger) WithError(err error) types.Logger      { return m }
func (m *mockLogger) WithModule(module string) types.Logger { return m }

func createTestModule(t *testing.T) *EnquiryModule {
	t.Helper()

	module := NewModule(&mockLogger{}, filepath.Join(t.TempDir(), "enquiries.db"))
	require.NoError(t, module.Start(context.Background()))
	t.Cleanup(func() {
		_ = module.Stop(context.Background())
	})
	return module
}

func validEnquiry() SubmitEnquiryRequest {
	return SubmitEnquiryRequest{
		Name:        "Sunita Traders",
		Email:       "orders@sunita.example",
		Mobile:      "+91 98765 43210",
		Requirement: "5000 woven sacks, 50kg, white",
	}
}

func TestSubmitEnquiry(t *testing.T) {
	module := createTestModule(t)
	ctx := context.Background()

	resp, err := module.submitEnquiry(ctx, validEnquiry(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, AcknowledgeMessage, resp.Message)

	list, err := module.listEnquiries(ctx, ListEnquiriesRequest{}, nil)
	require.NoError(t, err)
	require.Len(t, list.Enquiries, 1)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, resp.ID, list.Enquiries[0].ID)
	assert.Equal(t, "+919876543210", list.Enquiries[0].Mobile)
}

func TestSubmitEnquiry_Validation(t *testing.T) {
	module := createTestModule(t)

	tests := []struct {
		name    string
		mutate  func(*SubmitEnquiryRequest)
		message string
	}{
		{"missing name", func(r *SubmitEnquiryRequest) { r.Name = "  " }, "name is required"},
		{"bad email", func(r *SubmitEnquiryRequest) { r.Email = "sunita" }, "email must be a valid email"},
		{"short mobile", func(r *SubmitEnquiryRequest) { r.Mobile = "12345" }, "mobile must be a 10 to 15 digit phone number"},
		{"letters in mobile", func(r *SubmitEnquiryRequest) { r.Mobile = "98765abcde" }, "mobile must be a 10 to 15 digit phone number"},
		{"missing requirement", func(r *SubmitEnquiryRequest) { r.Requirement = "" }, "requirement is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEnquiry()
			tt.mutate(&req)
			_, err := module.submitEnquiry(context.Background(), req, nil)
			require.ErrorIs(t, err, ErrInvalidEnquiry)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	list, err := module.listEnquiries(context.Background(), ListEnquiriesRequest{}, nil)
	require.NoError(t, err)
	assert.Empty(t, list.Enquiries)
}

func TestListEnquiries_NewestFirstWithLimit(t *testing.T) {
	module := createTestModule(t)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"First", "Second", "Third"} {
		req := validEnquiry()
		req.Name = name
		resp, err := module.submitEnquiry(ctx, req, nil)
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}

	list, err := module.listEnquiries(ctx, ListEnquiriesRequest{Limit: 2}, nil)
	require.NoError(t, err)
	require.Len(t, list.Enquiries, 2)
	assert.Equal(t, int64(3), list.Total)
	assert.Equal(t, "Third", list.Enquiries[0].Name)
	assert.Equal(t, "Second", list.Enquiries[1].Name)
}

func TestHealth(t *testing.T) {
	module := NewModule(&mockLogger{}, filepath.Join(t.TempDir(), "e.db"))
	assert.False(t, module.Health(context.Background()).Healthy)

	require.NoError(t, module.Start(context.Background()))
	defer module.Stop(context.Background())
	assert.True(t, module.Health(context.Background()).Healthy)
}
