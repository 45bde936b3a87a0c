package handler

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/rl1809/partstore/internal/adapter/handler/pb"
	"github.com/rl1809/partstore/internal/core/domain"
	"github.com/rl1809/partstore/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedPartServiceServer
	partService *service.PartService
}

func NewGRPCHandler(partService *service.PartService) *GRPCHandler {
	return &GRPCHandler{partService: partService}
}

func (h *GRPCHandler) SubmitPart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields, err := domain.ParseFields(req.AsMap())
	if err == nil {
		_, err = h.partService.Create(ctx, fields)
	}
	return reply("submit", err, msgPartAdded, msgSaveFailed), nil
}

func (h *GRPCHandler) ListParts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	parts, err := h.partService.ListAll(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotReady) {
			return nil, status.Error(codes.Unavailable, msgNotReady)
		}
		log.Printf("list parts: %v", err)
		return nil, status.Error(codes.Internal, msgListFailed)
	}

	values := make([]interface{}, len(parts))
	for i, p := range parts {
		values[i] = p.ToMap()
	}

	list, err := structpb.NewList(values)
	if err != nil {
		log.Printf("list parts: encode: %v", err)
		return nil, status.Error(codes.Internal, msgListFailed)
	}

	return list, nil
}

// UpdatePart reads the part id from the _id key of the request struct.
func (h *GRPCHandler) UpdatePart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw := req.AsMap()
	id, _ := raw["_id"].(string)

	fields, err := domain.ParseFields(raw)
	if err == nil {
		_, err = h.partService.UpdateByID(ctx, id, fields)
	}
	return reply("update part "+id, err, msgPartUpdated, msgUpdateFailed), nil
}

func (h *GRPCHandler) DeletePart(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	_, err := h.partService.DeleteByID(ctx, req.GetValue())
	return reply("delete part "+req.GetValue(), err, msgPartDeleted, msgDeleteFailed), nil
}

func reply(op string, err error, success, failure string) *structpb.Struct {
	if err == nil {
		return newReply(true, success)
	}

	log.Printf("%s: %v", op, err)

	message := failure
	if errors.Is(err, service.ErrNotReady) {
		message = msgNotReady
	} else if errors.Is(err, service.ErrNotFound) {
		message = msgNotFound
	}
	return newReply(false, message)
}

func newReply(success bool, message string) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"success": structpb.NewBoolValue(success),
			"message": structpb.NewStringValue(message),
		},
	}
}
