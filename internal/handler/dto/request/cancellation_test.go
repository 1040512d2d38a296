//go:build unit

package request_test

import (
	"testing"

	"travel-loyalty-booking/internal/domain/cancellation"
	"travel-loyalty-booking/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCancellationRequest_ToDomain(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		req    request.CancellationRequest
		header string
		want   cancellation.Request
	}{
		{
			name:   "body requester wins over header",
			req:    request.CancellationRequest{LineItemIDs: []uuid.UUID{id}, Reason: " schedule change ", RequestedBy: "agent-7"},
			header: "MBR-1001",
			want:   cancellation.Request{LineItemIDs: []uuid.UUID{id}, Reason: "schedule change", RequestedBy: "agent-7"},
		},
		{
			name:   "header fills a blank requester",
			req:    request.CancellationRequest{RequestedBy: "  "},
			header: " MBR-1001 ",
			want:   cancellation.Request{RequestedBy: "MBR-1001"},
		},
		{
			name: "empty selection stays empty",
			req:  request.CancellationRequest{LineItemIDs: []uuid.UUID{}},
			want: cancellation.Request{LineItemIDs: []uuid.UUID{}},
		},
		{
			name: "empty request",
			req:  request.CancellationRequest{},
			want: cancellation.Request{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.ToDomain(tt.header)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.LineItemIDs == nil, got.LineItemIDs == nil)
		})
	}
}
