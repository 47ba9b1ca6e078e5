package mocks

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error

	// SentSMS records every SendSMS call when no SendSMSFunc is set.
	SentSMS []SentSMS
}

// SentSMS captures the arguments of one SendSMS call
type SentSMS struct {
	To      string
	Message string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS sends an SMS message
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.SentSMS = append(m.SentSMS, SentSMS{To: to, Message: message})
	return nil
}
