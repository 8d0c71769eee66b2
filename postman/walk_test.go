package postman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(method string) *Request {
	return &Request{Method: method}
}

func TestWalk(t *testing.T) {
	items := []*Item{
		{Name: "Users", Item: []*Item{
			{Name: "Admin", Item: []*Item{
				{Name: "List", Request: request("GET")},
			}},
			{Name: "Create", Request: request("POST")},
		}},
		{Name: "Health", Request: request("GET")},
		{Name: "Empty folder", Item: []*Item{}},
	}

	leaves := walk(items)
	require.Len(t, leaves, 3)
	assert.Equal(t, []string{"Users", "Admin"}, leaves[0].folders)
	assert.Equal(t, "List", leaves[0].item.Name)
	assert.Equal(t, []string{"Users"}, leaves[1].folders)
	assert.Nil(t, leaves[2].folders)
}

func TestWalkDuplicatesCollapse(t *testing.T) {
	first := &Item{Name: "Get", Request: request("GET")}
	other := &Item{Name: "Get", Request: request("POST")}
	second := &Item{Name: "Get", Request: request("get")}

	leaves := walk([]*Item{first, other, second})
	require.Len(t, leaves, 2)
	assert.Same(t, second, leaves[0].item, "later duplicate replaces earlier in place")
	assert.Same(t, other, leaves[1].item)
}

func TestComposePath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{[]string{"users", ":userId", "orders"}, "/users/{userId}/orders"},
		{[]string{"orders", ""}, "/orders"},
		{nil, "/"},
		{[]string{"{{version}}", "items"}, "/{{version}}/items"},
		{[]string{":"}, "/:"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, composePath(tt.segments), "%v", tt.segments)
	}
}
