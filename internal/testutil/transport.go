// Package testutil provides shared test doubles for exercising the client
// without a network.
package testutil

import "context"

// Call records one transport invocation.
type Call struct {
	Verb   string
	Path   string
	Params map[string]string
	Body   map[string]any
	Signed bool
}

// Transport is a scripted transport fake: it records every call and plays
// back queued responses in order. A set Err fails the next call instead.
type Transport struct {
	Calls     []Call
	Responses []any
	Err       error
}

func (t *Transport) next() any {
	if len(t.Responses) == 0 {
		return nil
	}
	r := t.Responses[0]
	t.Responses = t.Responses[1:]
	return r
}

func (t *Transport) record(call Call) (any, error) {
	t.Calls = append(t.Calls, call)
	if t.Err != nil {
		return nil, t.Err
	}
	return t.next(), nil
}

func (t *Transport) Get(_ context.Context, path string, params map[string]string, signed bool) (any, error) {
	return t.record(Call{Verb: "GET", Path: path, Params: params, Signed: signed})
}

func (t *Transport) Post(_ context.Context, path string, body map[string]any, signed bool) (any, error) {
	return t.record(Call{Verb: "POST", Path: path, Body: body, Signed: signed})
}

func (t *Transport) Update(_ context.Context, path string, body map[string]any) (any, error) {
	return t.record(Call{Verb: "UPDATE", Path: path, Body: body, Signed: true})
}

func (t *Transport) Delete(_ context.Context, path string, params map[string]string) (any, error) {
	return t.record(Call{Verb: "DELETE", Path: path, Params: params, Signed: true})
}

// LastCall returns the most recent call, or a zero Call when none happened.
func (t *Transport) LastCall() Call {
	if len(t.Calls) == 0 {
		return Call{}
	}
	return t.Calls[len(t.Calls)-1]
}
