// Package campus holds the generated campus.v1 messages and gRPC bindings.
// Sources live in proto/campus/v1.
package campus

//go:generate protoc -I ../../../proto --go_out=../../.. --go_opt=module=github.com/oggyb/campus-connect --go-grpc_out=../../.. --go-grpc_opt=module=github.com/oggyb/campus-connect campus/v1/common.proto campus/v1/identity.proto campus/v1/ledger.proto campus/v1/messaging.proto campus/v1/dice.proto campus/v1/moderation.proto campus/v1/presence.proto
