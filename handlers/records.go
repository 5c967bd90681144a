package handlers

import (
	"pocket-notes/app"
	"pocket-notes/storage"

	"github.com/gofiber/fiber/v2"
)

type record struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GetRecords dumps every stored key and its raw value
func GetRecords(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lister, ok := a.Store.(storage.Lister)
		if !ok {
			return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": "store cannot list keys"})
		}

		keys, err := lister.Keys(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(c, "Failed to list records", err)
		}

		records := make([]record, 0, len(keys))
		for _, key := range keys {
			value, found, err := a.Store.Get(c.UserContext(), key)
			if err != nil {
				return serverErrorWithDetails(c, "Failed to read record", err)
			}
			if found {
				records = append(records, record{Key: key, Value: value})
			}
		}

		return success(c, fiber.Map{"records": records})
	}
}
