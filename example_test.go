// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc_test

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jrpckit/jrpc"
)

type echoParams struct {
	Message string `json:"message"`
}

func ExampleRouter() {
	router := jrpc.NewRouter().
		Handle("echo", jrpc.NewHandler0P(func(_ context.Context, p echoParams) (string, error) {
			return "You sent: " + p.Message, nil
		})).
		Build()

	req, err := jrpc.ParseRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"echo","params":{"message":"hi"}}`))
	if err != nil {
		fmt.Println(err)
		return
	}

	resp := jrpc.ResponseFrom(router.Call(context.Background(), req))

	b, err := json.Marshal(resp)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(b))
	// Output: {"jsonrpc":"2.0","id":1,"result":"You sent: hi"}
}

type greeting struct {
	Prefix string
}

func ExampleWithResource() {
	b := jrpc.NewRouter().
		Handle("greet", jrpc.NewHandler1P(func(_ context.Context, g greeting, p echoParams) (string, error) {
			return g.Prefix + p.Message, nil
		}))
	router := jrpc.WithResource(b, greeting{Prefix: "Hello, "}).Build()

	s, err := router.CallRoute(
		context.Background(),
		jrpc.StringID("r-1"),
		"greet",
		json.RawMessage(`{"message":"world"}`),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(s.Value))
	// Output: "Hello, world"
}
