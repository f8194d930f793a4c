//go:build !linux && !windows && !darwin

package platform

import "fmt"

func fromContext(ctx any) (Native, error) {
	return nil, fmt.Errorf("unsupported window context %T", ctx)
}
