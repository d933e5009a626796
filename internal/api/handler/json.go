package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// json substitui o encoding/json da biblioteca padrão nas respostas da API
var json = jsoniter.ConfigCompatibleWithStandardLibrary
