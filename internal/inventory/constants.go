package inventory

const (
	ErrMsgAddItemFailed = "failed to add item to inventory: %w"

	LogMsgItemAdded = "Item added to inventory"
)
