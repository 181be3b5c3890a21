package httpclient

import (
	"time"

	"personal-info-system/config"

	"github.com/go-resty/resty/v2"
)

var Client *resty.Client

func Init() {
	timeout := time.Duration(config.Get().AI.TimeoutSecond) * time.Second
	Client = resty.New().SetTimeout(timeout)
}
