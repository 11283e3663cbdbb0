package domain

// ClusterColumn is the CSV column holding each customer's cluster assignment.
const ClusterColumn = "cluster"

// ClusterCount is the number of customers assigned to one cluster.
type ClusterCount struct {
	Cluster int
	Count   int
}
