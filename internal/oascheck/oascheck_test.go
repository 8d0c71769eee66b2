package oascheck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `openapi: 3.0.2
info:
  title: Orders
  version: 0.5.0
paths:
  /orders:
    post:
      parameters:
        - name: force
          in: query
          schema:
            type: string
          example: "true"
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/PostCreateOrderResponse'
              example:
                id: 1
                total: 12.5
components:
  schemas:
    PostCreateOrderResponse:
      type: object
      properties:
        id:
          type: integer
        total:
          type: number
      additionalProperties: false
`

func TestCheckValid(t *testing.T) {
	assert.Empty(t, Check(context.Background(), []byte(validDoc)))
}

func TestCheckDanglingRef(t *testing.T) {
	doc := `openapi: 3.0.2
info:
  title: Ping
  version: 0.5.0
paths:
  /ping:
    get:
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/GetPingResponse'
`
	problems := Check(context.Background(), []byte(doc))
	require.NotEmpty(t, problems)
}

func TestCheckMissingInfo(t *testing.T) {
	problems := Check(context.Background(), []byte("openapi: 3.0.2\npaths: {}\n"))
	require.NotEmpty(t, problems)
}

func TestCheckInvalidYAML(t *testing.T) {
	problems := Check(context.Background(), []byte("openapi: [unclosed"))
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "load:")
}
