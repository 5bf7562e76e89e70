package endpoint

import (
	"net/http"

	"github.com/openhearth/hap/netio/controller"
)

// Identify serves /identify by replying 204 No Content. It runs no
// identification routine and does not check the request method or
// whether any pairing exists. After pairing, controllers write the
// Identify characteristic through db.AccessoryList.Write instead.
type Identify struct {
	controller *controller.AccessoryController
}

func NewIdentify(controller *controller.AccessoryController) *Identify {
	return &Identify{controller: controller}
}

func (h *Identify) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
