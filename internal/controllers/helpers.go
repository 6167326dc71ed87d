package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// parseID reads the :id path parameter, reporting false when it is not a positive integer
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// logBindError records why a payload was rejected, the response itself stays generic
func logBindError(ctx *gin.Context, err error) {
	entry := log.WithField("path", ctx.FullPath())

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		fields := make(map[string]string, len(fieldErrors))
		for _, fe := range fieldErrors {
			fields[fe.Field()] = fe.Tag()
		}
		entry.WithField("fields", fields).Debug("Request payload failed validation")
		return
	}
	entry.WithError(err).Debug("Request payload could not be decoded")
}
