package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"publisher-gateway/domain/model"
	"publisher-gateway/infrastructure/logger"
	"publisher-gateway/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	gojson "github.com/goccy/go-json"
)

var errInvalidBody = errors.New("invalid request body")

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON decodes an optional JSON body into obj and validates it. An empty
// body is treated as an empty object.
func bindJSON(ctx *gin.Context, obj interface{}) error {
	var body []byte
	if ctx.Request.Body != nil {
		raw, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			return errInvalidBody
		}
		body = bytes.TrimSpace(raw)
	}
	if len(body) > 0 {
		if err := gojson.Unmarshal(body, obj); err != nil {
			return errInvalidBody
		}
	}
	return binding.Validator.ValidateStruct(obj)
}

func respondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": bindErrorMessage(err)})
}

func bindErrorMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		if fe.Tag() == "required" {
			return fmt.Sprintf("%s required", fe.Field())
		}
		return fmt.Sprintf("%s invalid", fe.Field())
	}
	return errInvalidBody.Error()
}

// respondUpstream forwards a single upstream call: success mirrors a 200 and
// the status code is passed through.
func respondUpstream(ctx *gin.Context, res *model.UpstreamResult) {
	ctx.JSON(res.StatusCode, gin.H{"success": res.OK(), "data": res.Body})
}

func respondError(ctx *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	var graphErr *usecase.GraphAPIError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validationErr.Message})
	case errors.As(err, &graphErr):
		ctx.JSON(graphErr.StatusCode, gin.H{"success": false, "error": graphErr.Payload})
	default:
		logger.GetLogger().WithField("error", err).WithField("path", ctx.FullPath()).Error("Upstream request failed")
		ctx.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "upstream request failed"})
	}
}
