package models

type ServiceType struct {
	ID   int64  `json:"serviceId"`
	Name string `json:"serviceName"`
}
