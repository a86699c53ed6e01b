package headless

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grafana/sobek"
)

// evaluate runs script against a minimal DOM built from page and returns the
// JSON-encoded completion value, as engines do for script results.
func evaluate(ctx context.Context, page *Page, script string) (string, error) {
	vm := sobek.New()

	if err := installDOM(vm, page); err != nil {
		return "", err
	}

	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	value, err := vm.RunString(script)
	if err != nil {
		return "", fmt.Errorf("script error: %w", err)
	}

	if value == nil || sobek.IsUndefined(value) || sobek.IsNull(value) {
		return "null", nil
	}
	data, err := json.Marshal(value.Export())
	if err != nil {
		return "", fmt.Errorf("failed to encode script result: %w", err)
	}
	return string(data), nil
}

func installDOM(vm *sobek.Runtime, page *Page) error {
	document := vm.NewObject()
	location := vm.NewObject()

	url, title := "about:blank", ""
	var body sobek.Value = sobek.Null()
	if page != nil {
		url, title = page.URL, page.Title
		if page.HasBody {
			b := vm.NewObject()
			if err := setAll(b, map[string]any{
				"innerText":   page.InnerText,
				"textContent": page.InnerText,
			}); err != nil {
				return err
			}
			body = b
		}
	}

	if err := location.Set("href", url); err != nil {
		return err
	}
	if err := setAll(document, map[string]any{
		"title":    title,
		"body":     body,
		"URL":      url,
		"location": location,
	}); err != nil {
		return err
	}

	window := vm.GlobalObject()
	if err := setAll(window, map[string]any{
		"document": document,
		"location": location,
		"window":   window,
	}); err != nil {
		return fmt.Errorf("failed to install DOM: %w", err)
	}
	return nil
}

func setAll(obj *sobek.Object, props map[string]any) error {
	for k, v := range props {
		if err := obj.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}
