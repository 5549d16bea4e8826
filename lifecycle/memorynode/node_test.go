package memorynode_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/memorynode"
)

func Test_Node_SetAndRead(t *testing.T) {
	ctx := context.Background()
	node := memorynode.New()

	has, err := node.HasProperty(ctx, "sys:created")
	assert.NoError(t, err)
	assert.False(t, has)

	value, err := node.PropertyValueWithDefault(ctx, "sys:created", "fallback")
	assert.NoError(t, err)
	assert.Equal(t, "fallback", value)

	assert.NoError(t, node.SetProperty(ctx, "sys:created", "value"))

	has, err = node.HasProperty(ctx, "sys:created")
	assert.NoError(t, err)
	assert.True(t, has)

	value, err = node.PropertyValueWithDefault(ctx, "sys:created", "fallback")
	assert.NoError(t, err)
	assert.Equal(t, "value", value)
	assert.Equal(t, 1, node.Len())
}

func Test_Node_PropertiesReturnsCopy(t *testing.T) {
	node := memorynode.NewWithProperties(map[string]any{"a": 1})

	properties := node.Properties()
	properties["b"] = 2

	assert.Equal(t, 1, node.Len())
}

func Test_Node_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	node := memorynode.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = node.SetProperty(ctx, fmt.Sprintf("key-%d", i), i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, node.Len())
}
