package grpc

// proto.go hand-writes the service descriptor for bib.mortgage.v1.MortgageService.
// Messages are plain structs carried by the JSON codec registered in json_codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "bib.mortgage.v1.MortgageService"

// MortgageServiceServer is the server API for MortgageService.
type MortgageServiceServer interface {
	CreateMortgage(context.Context, *CreateMortgageRequest) (*MortgageResponse, error)
	UpdateMortgage(context.Context, *UpdateMortgageRequest) (*MortgageResponse, error)
	ListMortgages(context.Context, *ListMortgagesRequest) (*ListMortgagesResponse, error)
	GetLedger(context.Context, *MortgageRequest) (*LedgerResponse, error)
	GetMonthChoices(context.Context, *MortgageRequest) (*MonthChoicesResponse, error)
	Speculate(context.Context, *SpeculateRequest) (*SpeculationResponse, error)
	DuplicateMortgage(context.Context, *MortgageRequest) (*MortgageResponse, error)
	DeleteMortgage(context.Context, *MortgageRequest) (*DeleteMortgageResponse, error)
	SetActualPayment(context.Context, *SetActualPaymentRequest) (*MortgageResponse, error)
	RecordAmount(context.Context, *RecordAmountRequest) (*AmountResponse, error)
	ClearAmount(context.Context, *ClearAmountRequest) (*ClearAmountResponse, error)
	mustEmbedUnimplementedMortgageServiceServer()
}

// UnimplementedMortgageServiceServer provides forward-compatible default implementations.
type UnimplementedMortgageServiceServer struct{}

func (UnimplementedMortgageServiceServer) CreateMortgage(context.Context, *CreateMortgageRequest) (*MortgageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateMortgage not implemented")
}
func (UnimplementedMortgageServiceServer) UpdateMortgage(context.Context, *UpdateMortgageRequest) (*MortgageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateMortgage not implemented")
}
func (UnimplementedMortgageServiceServer) ListMortgages(context.Context, *ListMortgagesRequest) (*ListMortgagesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMortgages not implemented")
}
func (UnimplementedMortgageServiceServer) GetLedger(context.Context, *MortgageRequest) (*LedgerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLedger not implemented")
}
func (UnimplementedMortgageServiceServer) GetMonthChoices(context.Context, *MortgageRequest) (*MonthChoicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMonthChoices not implemented")
}
func (UnimplementedMortgageServiceServer) Speculate(context.Context, *SpeculateRequest) (*SpeculationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Speculate not implemented")
}
func (UnimplementedMortgageServiceServer) DuplicateMortgage(context.Context, *MortgageRequest) (*MortgageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DuplicateMortgage not implemented")
}
func (UnimplementedMortgageServiceServer) DeleteMortgage(context.Context, *MortgageRequest) (*DeleteMortgageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteMortgage not implemented")
}
func (UnimplementedMortgageServiceServer) SetActualPayment(context.Context, *SetActualPaymentRequest) (*MortgageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetActualPayment not implemented")
}
func (UnimplementedMortgageServiceServer) RecordAmount(context.Context, *RecordAmountRequest) (*AmountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordAmount not implemented")
}
func (UnimplementedMortgageServiceServer) ClearAmount(context.Context, *ClearAmountRequest) (*ClearAmountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearAmount not implemented")
}
func (UnimplementedMortgageServiceServer) mustEmbedUnimplementedMortgageServiceServer() {}

// RegisterMortgageServiceServer registers the MortgageServiceServer with the gRPC server.
func RegisterMortgageServiceServer(s grpclib.ServiceRegistrar, srv MortgageServiceServer) {
	s.RegisterService(&_MortgageService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _MortgageService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MortgageServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateMortgage", Handler: _MortgageService_CreateMortgage_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "UpdateMortgage", Handler: _MortgageService_UpdateMortgage_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ListMortgages", Handler: _MortgageService_ListMortgages_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetLedger", Handler: _MortgageService_GetLedger_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetMonthChoices", Handler: _MortgageService_GetMonthChoices_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "Speculate", Handler: _MortgageService_Speculate_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "DuplicateMortgage", Handler: _MortgageService_DuplicateMortgage_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "DeleteMortgage", Handler: _MortgageService_DeleteMortgage_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "SetActualPayment", Handler: _MortgageService_SetActualPayment_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "RecordAmount", Handler: _MortgageService_RecordAmount_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ClearAmount", Handler: _MortgageService_ClearAmount_Handler},             //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_CreateMortgage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateMortgageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).CreateMortgage(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/CreateMortgage",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).CreateMortgage(ctx, req.(*CreateMortgageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_UpdateMortgage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateMortgageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).UpdateMortgage(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/UpdateMortgage",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).UpdateMortgage(ctx, req.(*UpdateMortgageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_ListMortgages_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMortgagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).ListMortgages(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ListMortgages",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).ListMortgages(ctx, req.(*ListMortgagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_GetLedger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(MortgageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).GetLedger(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/GetLedger",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).GetLedger(ctx, req.(*MortgageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_GetMonthChoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(MortgageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).GetMonthChoices(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/GetMonthChoices",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).GetMonthChoices(ctx, req.(*MortgageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_Speculate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SpeculateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).Speculate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/Speculate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).Speculate(ctx, req.(*SpeculateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_DuplicateMortgage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(MortgageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).DuplicateMortgage(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/DuplicateMortgage",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).DuplicateMortgage(ctx, req.(*MortgageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_DeleteMortgage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(MortgageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).DeleteMortgage(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/DeleteMortgage",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).DeleteMortgage(ctx, req.(*MortgageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_SetActualPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetActualPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).SetActualPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/SetActualPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).SetActualPayment(ctx, req.(*SetActualPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_RecordAmount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordAmountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).RecordAmount(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/RecordAmount",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).RecordAmount(ctx, req.(*RecordAmountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _MortgageService_ClearAmount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearAmountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MortgageServiceServer).ClearAmount(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ClearAmount",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MortgageServiceServer).ClearAmount(ctx, req.(*ClearAmountRequest))
	}
	return interceptor(ctx, in, info, handler)
}
