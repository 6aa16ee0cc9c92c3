package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/cafefausse/cafe-fausse/utils"
	"github.com/gin-gonic/gin"
)

// MenuController serves the menu from a flat JSON file of sections,
// each with an items array. Edits are a read-modify-write of the
// whole file; there is no locking around it.
type MenuController struct {
	MenuPath string
}

func NewMenuController(menuPath string) *MenuController {
	return &MenuController{MenuPath: menuPath}
}

func (mc *MenuController) loadSections() ([]map[string]interface{}, error) {
	raw, err := os.ReadFile(mc.MenuPath)
	if err != nil {
		return nil, err
	}
	var sections []map[string]interface{}
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// GetMenu -> GET /api/menu
func (mc *MenuController) GetMenu(c *gin.Context) {
	sections, err := mc.loadSections()
	if os.IsNotExist(err) {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu.json not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu retrieved", sections)
}

// ChangeMenuItem -> POST /api/menuchange
// Looks the item up by name (case-insensitive) across all sections,
// merges the request fields into it and writes the file back.
func (mc *MenuController) ChangeMenuItem(c *gin.Context) {
	sections, err := mc.loadSections()
	if os.IsNotExist(err) {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu.json not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Missing item name"))
		return
	}
	targetName, _ := req["name"].(string)
	if targetName == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Missing item name"))
		return
	}

	for _, section := range sections {
		items, _ := section["items"].([]interface{})
		for _, entry := range items {
			item, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			name, _ := item["name"].(string)
			if !strings.EqualFold(name, targetName) {
				continue
			}

			for key, value := range req {
				item[key] = value
			}

			out, err := json.MarshalIndent(sections, "", "  ")
			if err == nil {
				err = os.WriteFile(mc.MenuPath, out, 0644)
			}
			if err != nil {
				utils.ErrorLogger.Printf("failed to save menu changes: %v", err)
				utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("Failed to save changes: %v", err))
				return
			}

			utils.InfoLogger.Printf("Menu item updated: %s", name)
			utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
			return
		}
	}

	utils.RespondError(c, http.StatusNotFound, fmt.Errorf("Item '%s' not found", targetName))
}
