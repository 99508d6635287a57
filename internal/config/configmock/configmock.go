// Package configmock is a gomock-generated-style mock for
// config.Config, mirroring catalogmock's style.
//
//go:generate mockgen -destination=configmock.go -package=configmock . Config
package configmock

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/radio4000/r4fs/internal/config"
)

// MockConfig is a mock of the config.Config interface.
type MockConfig struct {
	ctrl     *gomock.Controller
	recorder *MockConfigMockRecorder
}

// MockConfigMockRecorder is the mock recorder for MockConfig.
type MockConfigMockRecorder struct {
	mock *MockConfig
}

// NewMockConfig creates a new mock instance.
func NewMockConfig(ctrl *gomock.Controller) *MockConfig {
	mock := &MockConfig{ctrl: ctrl}
	mock.recorder = &MockConfigMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConfig) EXPECT() *MockConfigMockRecorder {
	return m.recorder
}

func (m *MockConfig) MountPoint() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MountPoint")
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockConfigMockRecorder) MountPoint() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MountPoint", reflect.TypeOf((*MockConfig)(nil).MountPoint))
}

func (m *MockConfig) DownloadDir() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DownloadDir")
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockConfigMockRecorder) DownloadDir() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DownloadDir", reflect.TypeOf((*MockConfig)(nil).DownloadDir))
}

func (m *MockConfig) Favorites() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Favorites")
	ret0, _ := ret[0].([]string)
	return ret0
}

func (mr *MockConfigMockRecorder) Favorites() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Favorites", reflect.TypeOf((*MockConfig)(nil).Favorites))
}

func (m *MockConfig) Downloads() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Downloads")
	ret0, _ := ret[0].([]string)
	return ret0
}

func (mr *MockConfigMockRecorder) Downloads() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Downloads", reflect.TypeOf((*MockConfig)(nil).Downloads))
}

func (m *MockConfig) Settings() config.Settings {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Settings")
	ret0, _ := ret[0].(config.Settings)
	return ret0
}

func (mr *MockConfigMockRecorder) Settings() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Settings", reflect.TypeOf((*MockConfig)(nil).Settings))
}

func (m *MockConfig) SupabaseURL() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SupabaseURL")
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockConfigMockRecorder) SupabaseURL() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SupabaseURL", reflect.TypeOf((*MockConfig)(nil).SupabaseURL))
}

func (m *MockConfig) SupabaseKey() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SupabaseKey")
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockConfigMockRecorder) SupabaseKey() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SupabaseKey", reflect.TypeOf((*MockConfig)(nil).SupabaseKey))
}
