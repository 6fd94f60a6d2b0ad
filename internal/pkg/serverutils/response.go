package serverutils

// BaseResponse is the envelope every endpoint returns. Status is either
// "success" (Data set) or "error" (Message set); clients branch on nothing else.
type BaseResponse[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](data T) BaseResponse[T] {
	return BaseResponse[T]{
		Status: "success",
		Data:   data,
	}
}

func ErrorResponse(message string) BaseResponse[any] {
	return BaseResponse[any]{
		Status:  "error",
		Message: message,
	}
}

// ErrorResponseOr falls back to a display-safe message when the underlying
// error text is empty.
func ErrorResponseOr(err error, fallback string) BaseResponse[any] {
	msg := fallback
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return ErrorResponse(msg)
}
