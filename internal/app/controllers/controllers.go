package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/pkg/helpers"
)

// setLocation points the Location header at the canonical URL of a resource
// the request just created.
func setLocation(ctx *gin.Context, publicURL, resource string, id int64) {
	ctx.Header("Location", fmt.Sprintf("%s/api/%s/%d", helpers.ResolveOrigin(publicURL, ctx.Request), resource, id))
}
