// Package bookmarklet generates the javascript: bookmark users drag to
// their browser bar to import a recipe from pages that block server-side
// fetching. The bookmarklet collects structured data in the page itself
// and hands it to the app over window.postMessage, which sidesteps CORS,
// mixed-content blocks and URL length limits in one move.
package bookmarklet

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Message types of the opener/popup handshake. The import page posts
// MessageReady to its opener once it is listening; the bookmarklet
// replies with MessageData exactly once.
const (
	MessageReady = "aleppo:ready"
	MessageData  = "aleppo:data"
)

// Payload is what the bookmarklet posts back to the import page, and
// equally the body of a POST to the bookmarklet import endpoint.
type Payload struct {
	JSONLD   []any  `json:"jsonld"`
	URL      string `json:"url,omitempty"`
	Title    string `json:"title,omitempty"`
	OgImage  string `json:"ogImage,omitempty"`
	SiteName string `json:"siteName,omitempty"`
}

// the microdata fallback covers sites like WordPress/Jetpack blogs that
// mark recipes up with itemprop attributes instead of json-ld script
// tags (smittenkitchen.com is the canonical offender)
const codeTemplate = `(function(){
var base=__APP_URL__;
var scripts=document.querySelectorAll('script[type="application/ld+json"]');
var jsonld=[];
for(var i=0;i<scripts.length;i++){try{jsonld.push(JSON.parse(scripts[i].textContent));}catch(e){}}
var re=document.querySelector('[itemtype="https://schema.org/Recipe"],[itemtype="http://schema.org/Recipe"]');
if(re){
var md={'@type':'Recipe','recipeIngredient':[],'recipeInstructions':[]};
var n=re.querySelector('[itemprop="name"]');
if(n)md.name=n.textContent.trim();
var ings=re.querySelectorAll('[itemprop="recipeIngredient"]');
for(var j=0;j<ings.length;j++){var s=ings[j].textContent.trim();if(s)md.recipeIngredient.push(s);}
var yr=re.querySelector('[itemprop="recipeYield"]');
if(yr)md.recipeYield=yr.textContent.trim().replace(/^servings:\s*/i,'');
var tf=['totalTime','cookTime','prepTime'];
for(var j=0;j<tf.length;j++){var tel=re.querySelector('[itemprop="'+tf[j]+'"]');if(tel)md[tf[j]]=tel.getAttribute('datetime')||tel.textContent.trim();}
var iels=re.querySelectorAll('[itemprop="recipeInstructions"]');
if(iels.length){
for(var j=0;j<iels.length;j++){var s=iels[j].textContent.trim();if(s)md.recipeInstructions.push({'@type':'HowToStep','text':s});}
}else{
var de=re.querySelector('.e-instructions,.jetpack-recipe-directions');
if(de){
var ps=de.querySelectorAll('p');
if(ps.length){for(var j=0;j<ps.length;j++){var s=ps[j].textContent.trim();if(s)md.recipeInstructions.push({'@type':'HowToStep','text':s});}}
else{var s=de.textContent.trim();if(s)md.recipeInstructions.push({'@type':'HowToStep','text':s});}
}
}
if(md.name||md.recipeIngredient.length)jsonld.push(md);
}
var payload={
jsonld:jsonld,
url:location.href,
title:document.title,
ogImage:((document.querySelector('meta[property="og:image"]')||{}).content)||'',
siteName:((document.querySelector('meta[property="og:site_name"]')||{}).content)||''
};
var w=window.open(base+'/recipes/import?mode=bookmarklet','aleppo_import','width=1100,height=800');
if(!w){alert('Aleppo: allow popups for this site, then click the bookmarklet again.');return;}
var sent=false;
function onMsg(e){
if(!e.data||e.data.type!=='aleppo:ready'||sent)return;
sent=true;
window.removeEventListener('message',onMsg);
w.postMessage({type:'aleppo:data',payload:payload},base);
}
window.addEventListener('message',onMsg);
setTimeout(function(){window.removeEventListener('message',onMsg);},30000);
})();`

// Build returns the full javascript: URL for the given app origin,
// ready to be set as a bookmark's location.
func Build(appUrl string) (string, error) {
	quoted, err := json.Marshal(appUrl)
	if err != nil {
		return "", err
	}
	code := strings.Replace(codeTemplate, "__APP_URL__", string(quoted), 1)
	// QueryEscape encodes spaces as '+', which a javascript: URL would
	// interpret literally
	escaped := strings.ReplaceAll(url.QueryEscape(code), "+", "%20")
	return "javascript:" + escaped, nil
}
