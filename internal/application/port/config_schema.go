package port

import "github.com/bnema/miniworld/internal/domain/entity"

// ConfigSchemaProvider lists the configuration keys with their metadata.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKeyInfo
}
