package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("invalid parameter", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeUnexpectedStatus, "Request has failed with error code: %d", 500)
	suite.NotNil(err)
	suite.Equal(ErrCodeUnexpectedStatus, err.Code)
	suite.Equal("Request has failed with error code: 500", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeRequestFailed, "failed to request points", cause)
	suite.NotNil(err)
	suite.Equal(ErrCodeRequestFailed, err.Code)
	suite.Equal("failed to request points", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("unexpected end of JSON input")
	err := Wrapf(ErrCodeResponseParseFailed, cause, "failed to parse points for count %d", 5)
	suite.NotNil(err)
	suite.Equal(ErrCodeResponseParseFailed, err.Code)
	suite.Equal("failed to parse points for count 5", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Equal("[100] invalid parameter", err.Error())
}

func (suite *ErrorTestSuite) TestErrorStringWithCause() {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeRequestFailed, "failed to request points", cause)
	suite.Equal("[201] failed to request points: connection refused", err.Error())
}

func (suite *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeRequestFailed, "request failed", cause)
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestUnwrapNil() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Nil(err.Unwrap())
}

func (suite *ErrorTestSuite) TestGetCode() {
	err := New(ErrCodeCountOutOfBounds, "Count is out of bounds 1..20")
	suite.Equal(ErrCodeCountOutOfBounds, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromWrapped() {
	cause := New(ErrCodeUnexpectedStatus, "Request has failed with error code: 404")
	err := Wrap(ErrCodeExportFailed, "export failed", cause)
	// GetCode should return the outermost error's code
	suite.Equal(ErrCodeExportFailed, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromStandardError() {
	err := errors.New("standard error")
	suite.Equal(ErrCodeUnknown, GetCode(err))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.True(HasCode(err, ErrCodeInvalidParameter))
	suite.False(HasCode(err, ErrCodeRequestFailed))
}

func (suite *ErrorTestSuite) TestIsError() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeRequestFailed, "request failed", cause)
	suite.True(Is(err, cause))
}

func (suite *ErrorTestSuite) TestAsError() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	var graphErr *Error
	suite.True(As(err, &graphErr))
	suite.Equal(ErrCodeInvalidParameter, graphErr.Code)
}

func (suite *ErrorTestSuite) TestMessage() {
	suite.Equal("", Message(nil))
	suite.Equal("plain", Message(errors.New("plain")))

	err := Newf(ErrCodeUnexpectedStatus, "Request has failed with error code: %d", 500)
	suite.Equal("Request has failed with error code: 500", Message(err))

	// The outermost *Error message wins, even through fmt wrapping
	wrapped := fmt.Errorf("fetch: %w", Wrap(ErrCodeRequestFailed, "failed to request points", errors.New("eof")))
	suite.Equal("failed to request points", Message(wrapped))
}

func (suite *ErrorTestSuite) TestErrorCodeValues() {
	suite.Equal(ErrorCode(1), ErrCodeUnknown)
	suite.Equal(ErrorCode(100), ErrCodeInvalidParameter)
	suite.Equal(ErrorCode(102), ErrCodeCountOutOfBounds)
	suite.Equal(ErrorCode(200), ErrCodeSourceUnavailable)
	suite.Equal(ErrorCode(203), ErrCodeUnexpectedStatus)
	suite.Equal(ErrorCode(300), ErrCodeRenderFailed)
	suite.Equal(ErrorCode(400), ErrCodeInvalidVersion)
}
