//go:generate mockgen -source=../street_repository.go   -destination=./mock_street_repository.go   -package=mocks
//go:generate mockgen -source=../street_cache.go        -destination=./mock_street_cache.go        -package=mocks
//go:generate mockgen -source=../validator.go           -destination=./mock_validator.go           -package=mocks
//go:generate mockgen -source=../street_read_service.go -destination=./mock_street_read_service.go -package=mocks
//go:generate mockgen -source=../street_source.go       -destination=./mock_street_source.go       -package=mocks
//go:generate mockgen -source=../message_publisher.go   -destination=./mock_message_publisher.go   -package=mocks

package mocks
