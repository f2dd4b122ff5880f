package queue

import (
	"encoding/json"
	"testing"

	"github.com/seu-repo/smartparking/internal/mocks"
)

func TestPublishJSON_MarshalsPayload(t *testing.T) {
	// Arrange
	mq := mocks.NewMockMessageQueue()
	payload := map[string]string{"order_id": "order-1"}

	// Act
	err := PublishJSON(mq, SubjectOrderRenewed, payload)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	published := mq.GetPublishedMessages(SubjectOrderRenewed)
	if len(published) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(published))
	}
	var got map[string]string
	if err := json.Unmarshal(published[0], &got); err != nil {
		t.Fatalf("expected JSON body, got %v", err)
	}
	if got["order_id"] != "order-1" {
		t.Errorf("expected order-1, got %s", got["order_id"])
	}
}

func TestPublishJSON_ZeroValueMockQueue(t *testing.T) {
	// Arrange
	var mq mocks.MockMessageQueue

	// Act
	err := PublishJSON(&mq, SubjectPaymentMade, map[string]string{"payment_id": "pay-1"})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mq.GetPublishedMessages(SubjectPaymentMade)) != 1 {
		t.Error("expected message recorded on zero-value mock")
	}
}
