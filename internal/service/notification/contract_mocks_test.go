// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
//

// Package notification_test is a generated GoMock package.
package notification_test

import (
	context "context"
	entities "delivery/internal/entities"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, notificationEntity entities.Notification) (*entities.Notification, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, notificationEntity)
	ret0, _ := ret[0].(*entities.Notification)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, notificationEntity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, notificationEntity)
}

// DeleteReadOlderThan mocks base method.
func (m *MockRepository) DeleteReadOlderThan(ctx context.Context, days int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteReadOlderThan", ctx, days)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteReadOlderThan indicates an expected call of DeleteReadOlderThan.
func (mr *MockRepositoryMockRecorder) DeleteReadOlderThan(ctx, days any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteReadOlderThan", reflect.TypeOf((*MockRepository)(nil).DeleteReadOlderThan), ctx, days)
}

// ListByUser mocks base method.
func (m *MockRepository) ListByUser(ctx context.Context, userID int64) ([]entities.Notification, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", ctx, userID)
	ret0, _ := ret[0].([]entities.Notification)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByUser indicates an expected call of ListByUser.
func (mr *MockRepositoryMockRecorder) ListByUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockRepository)(nil).ListByUser), ctx, userID)
}

// MarkRead mocks base method.
func (m *MockRepository) MarkRead(ctx context.Context, userID int64, ids []int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkRead", ctx, userID, ids)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MarkRead indicates an expected call of MarkRead.
func (mr *MockRepositoryMockRecorder) MarkRead(ctx, userID, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkRead", reflect.TypeOf((*MockRepository)(nil).MarkRead), ctx, userID, ids)
}

// MockUserService is a mock of UserService interface.
type MockUserService struct {
	ctrl     *gomock.Controller
	recorder *MockUserServiceMockRecorder
}

// MockUserServiceMockRecorder is the mock recorder for MockUserService.
type MockUserServiceMockRecorder struct {
	mock *MockUserService
}

// NewMockUserService creates a new mock instance.
func NewMockUserService(ctrl *gomock.Controller) *MockUserService {
	mock := &MockUserService{ctrl: ctrl}
	mock.recorder = &MockUserServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserService) EXPECT() *MockUserServiceMockRecorder {
	return m.recorder
}

// ClearPushToken mocks base method.
func (m *MockUserService) ClearPushToken(ctx context.Context, userID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearPushToken", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearPushToken indicates an expected call of ClearPushToken.
func (mr *MockUserServiceMockRecorder) ClearPushToken(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearPushToken", reflect.TypeOf((*MockUserService)(nil).ClearPushToken), ctx, userID)
}

// GetUser mocks base method.
func (m *MockUserService) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUser", ctx, id)
	ret0, _ := ret[0].(*entities.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUser indicates an expected call of GetUser.
func (mr *MockUserServiceMockRecorder) GetUser(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUser", reflect.TypeOf((*MockUserService)(nil).GetUser), ctx, id)
}

// ListAdmins mocks base method.
func (m *MockUserService) ListAdmins(ctx context.Context) ([]entities.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAdmins", ctx)
	ret0, _ := ret[0].([]entities.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAdmins indicates an expected call of ListAdmins.
func (mr *MockUserServiceMockRecorder) ListAdmins(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAdmins", reflect.TypeOf((*MockUserService)(nil).ListAdmins), ctx)
}

// SetPushToken mocks base method.
func (m *MockUserService) SetPushToken(ctx context.Context, userID int64, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetPushToken", ctx, userID, token)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetPushToken indicates an expected call of SetPushToken.
func (mr *MockUserServiceMockRecorder) SetPushToken(ctx, userID, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPushToken", reflect.TypeOf((*MockUserService)(nil).SetPushToken), ctx, userID, token)
}

// MockPushGateway is a mock of PushGateway interface.
type MockPushGateway struct {
	ctrl     *gomock.Controller
	recorder *MockPushGatewayMockRecorder
}

// MockPushGatewayMockRecorder is the mock recorder for MockPushGateway.
type MockPushGatewayMockRecorder struct {
	mock *MockPushGateway
}

// NewMockPushGateway creates a new mock instance.
func NewMockPushGateway(ctrl *gomock.Controller) *MockPushGateway {
	mock := &MockPushGateway{ctrl: ctrl}
	mock.recorder = &MockPushGatewayMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPushGateway) EXPECT() *MockPushGatewayMockRecorder {
	return m.recorder
}

// Send mocks base method.
func (m *MockPushGateway) Send(ctx context.Context, token, title, message string, payload map[string]string) (*entities.PushResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, token, title, message, payload)
	ret0, _ := ret[0].(*entities.PushResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Send indicates an expected call of Send.
func (mr *MockPushGatewayMockRecorder) Send(ctx, token, title, message, payload any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockPushGateway)(nil).Send), ctx, token, title, message, payload)
}
