// Code generated by MockGen. DO NOT EDIT.
// Source: ./service.go
//
// Generated by this command:
//
//	mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Client=MockClientService
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	model "reservahub/internal/domains/client/model"
	dto "reservahub/internal/domains/client/model/dto"
	service "reservahub/internal/domains/client/service"
	dto0 "reservahub/shared/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockClientService is a mock of Client interface.
type MockClientService struct {
	ctrl     *gomock.Controller
	recorder *MockClientServiceMockRecorder
	isgomock struct{}
}

// MockClientServiceMockRecorder is the mock recorder for MockClientService.
type MockClientServiceMockRecorder struct {
	mock *MockClientService
}

// NewMockClientService creates a new mock instance.
func NewMockClientService(ctrl *gomock.Controller) *MockClientService {
	mock := &MockClientService{ctrl: ctrl}
	mock.recorder = &MockClientServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockClientService) EXPECT() *MockClientServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockClientService) Create(ctx context.Context, req dto.CreateClientRequest, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, req, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockClientServiceMockRecorder) Create(ctx, req, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockClientService)(nil).Create), ctx, req, businessID)
}

// Delete mocks base method.
func (m *MockClientService) Delete(ctx context.Context, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockClientServiceMockRecorder) Delete(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockClientService)(nil).Delete), ctx, id, businessID)
}

// Get mocks base method.
func (m *MockClientService) Get(ctx context.Context, id, businessID string) (dto.ClientResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id, businessID)
	ret0, _ := ret[0].(dto.ClientResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockClientServiceMockRecorder) Get(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockClientService)(nil).Get), ctx, id, businessID)
}

// GetAll mocks base method.
func (m *MockClientService) GetAll(ctx context.Context, req dto0.QueryParams, businessID string) (dto.GetClientsResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx, req, businessID)
	ret0, _ := ret[0].(dto.GetClientsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockClientServiceMockRecorder) GetAll(ctx, req, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockClientService)(nil).GetAll), ctx, req, businessID)
}

// RecordVisit mocks base method.
func (m *MockClientService) RecordVisit(ctx context.Context, id, visitDate string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordVisit", ctx, id, visitDate)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordVisit indicates an expected call of RecordVisit.
func (mr *MockClientServiceMockRecorder) RecordVisit(ctx, id, visitDate any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordVisit", reflect.TypeOf((*MockClientService)(nil).RecordVisit), ctx, id, visitDate)
}

// ResolveOrCreate mocks base method.
func (m *MockClientService) ResolveOrCreate(ctx context.Context, businessID string, ref service.ClientRef) (model.Client, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveOrCreate", ctx, businessID, ref)
	ret0, _ := ret[0].(model.Client)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ResolveOrCreate indicates an expected call of ResolveOrCreate.
func (mr *MockClientServiceMockRecorder) ResolveOrCreate(ctx, businessID, ref any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveOrCreate", reflect.TypeOf((*MockClientService)(nil).ResolveOrCreate), ctx, businessID, ref)
}

// Update mocks base method.
func (m *MockClientService) Update(ctx context.Context, req dto.UpdateClientRequest, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, req, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockClientServiceMockRecorder) Update(ctx, req, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockClientService)(nil).Update), ctx, req, id, businessID)
}
