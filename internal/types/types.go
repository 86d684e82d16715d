// internal/types/types.go
package types

// EntityID идентифицирует сущность в ECS. Идентификаторы монотонно растут
// и никогда не переиспользуются, поэтому проверка наличия в коллекции
// одновременно является проверкой "жива ли сущность".
type EntityID uint64
