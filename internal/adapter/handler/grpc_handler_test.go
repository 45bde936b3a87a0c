package handler

import (
	"context"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/rl1809/partstore/internal/adapter/handler/pb"
	"github.com/rl1809/partstore/internal/core/service"
)

func newGRPCClient(t *testing.T, svc *service.PartService) pb.PartServiceClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	pb.RegisterPartServiceServer(grpcServer, NewGRPCHandler(svc))
	go grpcServer.Serve(lis)
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return pb.NewPartServiceClient(conn)
}

func mustStruct(t *testing.T, m map[string]interface{}) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestGRPC_Lifecycle(t *testing.T) {
	client := newGRPCClient(t, newMemoryService(t))
	ctx := context.Background()

	res, err := client.SubmitPart(ctx, mustStruct(t, map[string]interface{}{
		"type": "resistor", "brand": "X", "quantity": 10, "price": 0.5,
	}))
	require.NoError(t, err)
	assert.True(t, res.GetFields()["success"].GetBoolValue())
	assert.Equal(t, msgPartAdded, res.GetFields()["message"].GetStringValue())

	list, err := client.ListParts(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.GetValues(), 1)

	part := list.GetValues()[0].GetStructValue().AsMap()
	assert.Equal(t, "resistor", part["type"])
	assert.Equal(t, 10.0, part["quantity"])
	id := part["_id"].(string)

	res, err = client.UpdatePart(ctx, mustStruct(t, map[string]interface{}{"_id": id, "quantity": 3}))
	require.NoError(t, err)
	assert.True(t, res.GetFields()["success"].GetBoolValue())

	list, err = client.ListParts(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, 3.0, list.GetValues()[0].GetStructValue().AsMap()["quantity"])

	res, err = client.DeletePart(ctx, wrapperspb.String(id))
	require.NoError(t, err)
	assert.True(t, res.GetFields()["success"].GetBoolValue())
	assert.Equal(t, msgPartDeleted, res.GetFields()["message"].GetStringValue())

	list, err = client.ListParts(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Empty(t, list.GetValues())
}

func TestGRPC_UnknownIDIsNoop(t *testing.T) {
	client := newGRPCClient(t, newMemoryService(t))

	res, err := client.DeletePart(context.Background(), wrapperspb.String(uuid.NewString()))
	require.NoError(t, err)
	assert.True(t, res.GetFields()["success"].GetBoolValue())
}

func TestGRPC_StoreDown(t *testing.T) {
	svc := service.NewPartService()
	svc.Attach(downRepo{})
	client := newGRPCClient(t, svc)
	ctx := context.Background()

	res, err := client.SubmitPart(ctx, mustStruct(t, map[string]interface{}{"type": "resistor"}))
	require.NoError(t, err)
	assert.False(t, res.GetFields()["success"].GetBoolValue())
	assert.Equal(t, msgSaveFailed, res.GetFields()["message"].GetStringValue())

	_, err = client.ListParts(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestGRPC_NotReady(t *testing.T) {
	client := newGRPCClient(t, service.NewPartService())

	_, err := client.ListParts(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	res, err := client.DeletePart(context.Background(), wrapperspb.String(uuid.NewString()))
	require.NoError(t, err)
	assert.Equal(t, msgNotReady, res.GetFields()["message"].GetStringValue())
}
