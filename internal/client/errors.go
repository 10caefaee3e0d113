package client

import "errors"

// ErrRequestFailed é a causa de toda falha de transporte ou resposta não-2xx.
var ErrRequestFailed = errors.New("client: request failed")

// RequestError carrega só a mensagem da operação; status e corpo da
// resposta não são repassados.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}
