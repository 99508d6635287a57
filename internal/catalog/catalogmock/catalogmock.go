// Package catalogmock is a gomock-generated-style mock for
// catalog.Catalog, following the same go.uber.org/mock usage the
// teacher repo applies to its own collaborator interfaces
// (internal/mock/definitions.go -> go.uber.org/mock/gomock).
//
//go:generate mockgen -destination=catalogmock.go -package=catalogmock . Catalog
package catalogmock

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/radio4000/r4fs/internal/catalog"
)

// MockCatalog is a mock of the catalog.Catalog interface.
type MockCatalog struct {
	ctrl     *gomock.Controller
	recorder *MockCatalogMockRecorder
}

// MockCatalogMockRecorder is the mock recorder for MockCatalog.
type MockCatalogMockRecorder struct {
	mock *MockCatalog
}

// NewMockCatalog creates a new mock instance.
func NewMockCatalog(ctrl *gomock.Controller) *MockCatalog {
	mock := &MockCatalog{ctrl: ctrl}
	mock.recorder = &MockCatalogMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCatalog) EXPECT() *MockCatalogMockRecorder {
	return m.recorder
}

// Channels mocks base method.
func (m *MockCatalog) Channels(ctx context.Context) ([]catalog.Channel, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Channels", ctx)
	ret0, _ := ret[0].([]catalog.Channel)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Channels indicates an expected call.
func (mr *MockCatalogMockRecorder) Channels(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Channels", reflect.TypeOf((*MockCatalog)(nil).Channels), ctx)
}

// Channel mocks base method.
func (m *MockCatalog) Channel(ctx context.Context, slug string) (catalog.Channel, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Channel", ctx, slug)
	ret0, _ := ret[0].(catalog.Channel)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Channel indicates an expected call.
func (mr *MockCatalogMockRecorder) Channel(ctx, slug any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Channel", reflect.TypeOf((*MockCatalog)(nil).Channel), ctx, slug)
}

// Tracks mocks base method.
func (m *MockCatalog) Tracks(ctx context.Context, channelSlug string) ([]catalog.Track, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Tracks", ctx, channelSlug)
	ret0, _ := ret[0].([]catalog.Track)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Tracks indicates an expected call.
func (mr *MockCatalogMockRecorder) Tracks(ctx, channelSlug any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Tracks", reflect.TypeOf((*MockCatalog)(nil).Tracks), ctx, channelSlug)
}

// StorageBaseURL mocks base method.
func (m *MockCatalog) StorageBaseURL() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StorageBaseURL")
	ret0, _ := ret[0].(string)
	return ret0
}

// StorageBaseURL indicates an expected call.
func (mr *MockCatalogMockRecorder) StorageBaseURL() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StorageBaseURL", reflect.TypeOf((*MockCatalog)(nil).StorageBaseURL))
}
