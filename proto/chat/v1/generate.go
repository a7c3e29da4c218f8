// Package chatv1 holds the generated messages and gRPC stubs of the
// conversation API. Edit conversation.proto, then run go generate.
package chatv1

//go:generate protoc --proto_path=../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative chat/v1/conversation.proto
