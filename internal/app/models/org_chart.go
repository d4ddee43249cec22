package models

import "time"

// ChartPosition is where a node sits on the editor canvas.
type ChartPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartNode is a member box on an organizational chart.
type ChartNode struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	PhotoURL *string       `json:"photo_url"`
	Position ChartPosition `json:"position"`
	Title    *string       `json:"title"`
}

// ChartEdge is a reporting relationship from Source to Target.
type ChartEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// OrgChart is the whole chart document of one organization.
type OrgChart struct {
	Edges          []ChartEdge `json:"edges"`
	Nodes          []ChartNode `json:"nodes"`
	OrganizationID int64       `json:"organization_id"`
	Published      bool        `json:"published"`
	UpdatedAt      *time.Time  `json:"updated_at"`
}

// NodeIndex returns the position of node id in Nodes, or -1.
func (c *OrgChart) NodeIndex(id string) int {
	for i := range c.Nodes {
		if c.Nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// EdgeIndex returns the position of edge id in Edges, or -1.
func (c *OrgChart) EdgeIndex(id string) int {
	for i := range c.Edges {
		if c.Edges[i].ID == id {
			return i
		}
	}
	return -1
}
