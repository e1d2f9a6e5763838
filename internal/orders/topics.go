package orders

const TopicOrderConfirmed = "order.confirmed"

// Partition key = order number, so events for one order stay ordered.
func PartitionKey(orderNumber string) []byte { return []byte(orderNumber) }
