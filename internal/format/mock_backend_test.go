package format

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/xonecas/snippetfmt/internal/style"
)

// MockBackend is a hand-maintained stand-in for a mockgen-generated mock of
// style.Backend, in the shape github.com/golang/mock/mockgen emits — used
// here instead of running mockgen, which this module's build never invokes.
type MockBackend struct {
	ctrl     *gomock.Controller
	recorder *MockBackendMockRecorder
}

type MockBackendMockRecorder struct {
	mock *MockBackend
}

func NewMockBackend(ctrl *gomock.Controller) *MockBackend {
	mock := &MockBackend{ctrl: ctrl}
	mock.recorder = &MockBackendMockRecorder{mock: mock}
	return mock
}

func (m *MockBackend) EXPECT() *MockBackendMockRecorder {
	return m.recorder
}

func (m *MockBackend) Open(c style.Color) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Open", c)
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockBackendMockRecorder) Open(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Open", reflect.TypeOf((*MockBackend)(nil).Open), c)
}

func (m *MockBackend) Reset() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reset")
	ret0, _ := ret[0].(string)
	return ret0
}

func (mr *MockBackendMockRecorder) Reset() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reset", reflect.TypeOf((*MockBackend)(nil).Reset))
}

var _ style.Backend = (*MockBackend)(nil)
