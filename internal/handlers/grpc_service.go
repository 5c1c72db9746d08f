package handlers

import (
	"context"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"google.golang.org/grpc"
)

const (
	PhotoLikeServiceName = "photolike.PhotoLikeService"
	MethodToggleLike     = "/photolike.PhotoLikeService/ToggleLike"
	MethodGetPhoto       = "/photolike.PhotoLikeService/GetPhoto"
	MethodListPhotos     = "/photolike.PhotoLikeService/ListPhotos"
)

type ToggleLikeRequest struct {
	PhotoId string `json:"photo_id"`
	UserId  string `json:"user_id"`
	Heart   *bool  `json:"heart"`
}
type ToggleLikeResponse struct {
	Status     bool  `json:"status"`
	PhotoLikes int64 `json:"photo_likes"`
	UserLikes  bool  `json:"user_likes"`
}
type GetPhotoRequest struct {
	PhotoId string `json:"photo_id"`
	UserId  string `json:"user_id,omitempty"`
}
type GetPhotoResponse struct {
	Status bool         `json:"status"`
	Photo  *model.Photo `json:"photo"`
}
type ListPhotosRequest struct {
	Order string `json:"order"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
type ListPhotosResponse struct {
	Status bool           `json:"status"`
	Photos []*model.Photo `json:"photos"`
	Total  int64          `json:"total"`
}

type PhotoLikeServiceServer interface {
	ToggleLike(ctx context.Context, req *ToggleLikeRequest) (*ToggleLikeResponse, error)
	GetPhoto(ctx context.Context, req *GetPhotoRequest) (*GetPhotoResponse, error)
	ListPhotos(ctx context.Context, req *ListPhotosRequest) (*ListPhotosResponse, error)
}

func RegisterPhotoLikeServiceServer(s grpc.ServiceRegistrar, srv PhotoLikeServiceServer) {
	s.RegisterService(&PhotoLikeService_ServiceDesc, srv)
}

var PhotoLikeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PhotoLikeServiceName,
	HandlerType: (*PhotoLikeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ToggleLike", Handler: toggleLikeHandler},
		{MethodName: "GetPhoto", Handler: getPhotoHandler},
		{MethodName: "ListPhotos", Handler: listPhotosHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "photolike.proto",
}

func toggleLikeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ToggleLikeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhotoLikeServiceServer).ToggleLike(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodToggleLike}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PhotoLikeServiceServer).ToggleLike(ctx, req.(*ToggleLikeRequest))
	}
	return interceptor(ctx, in, info, handler)
}
func getPhotoHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetPhotoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhotoLikeServiceServer).GetPhoto(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodGetPhoto}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PhotoLikeServiceServer).GetPhoto(ctx, req.(*GetPhotoRequest))
	}
	return interceptor(ctx, in, info, handler)
}
func listPhotosHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListPhotosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhotoLikeServiceServer).ListPhotos(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodListPhotos}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PhotoLikeServiceServer).ListPhotos(ctx, req.(*ListPhotosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PhotoLikeServiceClient calls the service over a connection using the JSON
// codec.
type PhotoLikeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPhotoLikeServiceClient(cc grpc.ClientConnInterface) *PhotoLikeServiceClient {
	return &PhotoLikeServiceClient{cc: cc}
}
func (c *PhotoLikeServiceClient) ToggleLike(ctx context.Context, in *ToggleLikeRequest, opts ...grpc.CallOption) (*ToggleLikeResponse, error) {
	out := new(ToggleLikeResponse)
	err := c.cc.Invoke(ctx, MethodToggleLike, in, out, append(opts, grpc.CallContentSubtype(JSONCodecName))...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
func (c *PhotoLikeServiceClient) GetPhoto(ctx context.Context, in *GetPhotoRequest, opts ...grpc.CallOption) (*GetPhotoResponse, error) {
	out := new(GetPhotoResponse)
	err := c.cc.Invoke(ctx, MethodGetPhoto, in, out, append(opts, grpc.CallContentSubtype(JSONCodecName))...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
func (c *PhotoLikeServiceClient) ListPhotos(ctx context.Context, in *ListPhotosRequest, opts ...grpc.CallOption) (*ListPhotosResponse, error) {
	out := new(ListPhotosResponse)
	err := c.cc.Invoke(ctx, MethodListPhotos, in, out, append(opts, grpc.CallContentSubtype(JSONCodecName))...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
